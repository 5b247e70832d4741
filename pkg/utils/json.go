package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// IndentJSON é a configuração usada para arquivos e saídas legíveis:
// indentação de dois espaços e sem escapar caracteres não ASCII/HTML.
var IndentJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func PrettyJSON(in any) (string, error) {
	buffer, err := IndentJSON.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
