package knowledge

//go:generate go run github.com/optlike/optlike/cmd/optlike generate knowledge.optlike.yaml
