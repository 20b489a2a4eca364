package cache

//go:generate go run github.com/optlike/optlike/cmd/optlike generate cached.optlike.yaml
