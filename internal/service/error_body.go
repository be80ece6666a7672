package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/avc-dev/shortener-frontend/internal/model"
)

const (
	errorKey  = "error"
	detailKey = "detail"
)

// bodyEntry: пара ключ-значение верхнего уровня JSON объекта
type bodyEntry struct {
	key   string
	value json.RawMessage
}

// ParseErrorBody разбирает тело ошибочного ответа, проверяя варианты строго по порядку:
// SingleMessage ("error"), DetailMessage ("detail"), FieldErrorMap (любой непустой объект), Unknown.
func ParseErrorBody(body []byte) model.ErrorBody {
	entries, err := decodeObject(body)
	if err != nil || len(entries) == 0 {
		return model.ErrorBody{Kind: model.ErrorBodyUnknown}
	}

	if text, ok := stringValue(entries, errorKey); ok {
		return model.ErrorBody{Kind: model.ErrorBodySingleMessage, Text: text}
	}

	if text, ok := stringValue(entries, detailKey); ok {
		return model.ErrorBody{Kind: model.ErrorBodyDetailMessage, Text: text}
	}

	fields := make([]model.FieldErrors, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, model.FieldErrors{
			Field:    e.key,
			Messages: messages(e.value),
		})
	}

	return model.ErrorBody{Kind: model.ErrorBodyFieldErrorMap, Fields: fields}
}

// decodeObject читает JSON объект с сохранением порядка ключей.
// Повторяющийся ключ остается на месте первого вхождения со значением последнего.
func decodeObject(body []byte) ([]bodyEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []bodyEntry
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		if i, seen := index[key]; seen {
			entries[i].value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, bodyEntry{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return entries, nil
}

// stringValue возвращает непустое строковое значение ключа верхнего уровня
func stringValue(entries []bodyEntry, key string) (string, bool) {
	for _, e := range entries {
		if e.key != key {
			continue
		}
		var s string
		if err := json.Unmarshal(e.value, &s); err != nil || s == "" {
			return "", false
		}
		return s, true
	}
	return "", false
}

// messages приводит значение поля к списку строк:
// массив поэлементно, строка как есть, остальное в виде компактного JSON
func messages(value json.RawMessage) []string {
	var list []json.RawMessage
	if err := json.Unmarshal(value, &list); err == nil {
		result := make([]string, 0, len(list))
		for _, item := range list {
			result = append(result, scalarText(item))
		}
		return result
	}

	return []string{scalarText(value)}
}

func scalarText(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}
