package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	IDLength   = 10
)

// GenerateID gera IDs curtos para relatórios e linhas de vendas importadas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, IDLength)
}
