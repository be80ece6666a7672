package model

import "strings"

type ErrorBodyKind int

const (
	ErrorBodyUnknown ErrorBodyKind = iota
	ErrorBodySingleMessage
	ErrorBodyDetailMessage
	ErrorBodyFieldErrorMap
)

func (k ErrorBodyKind) String() string {
	switch k {
	case ErrorBodySingleMessage:
		return "single_message"
	case ErrorBodyDetailMessage:
		return "detail_message"
	case ErrorBodyFieldErrorMap:
		return "field_error_map"
	default:
		return "unknown"
	}
}

// FieldErrors: сообщения об ошибках одного поля в порядке, в котором их прислал бэкенд
type FieldErrors struct {
	Field    string
	Messages []string
}

// ErrorBody: разобранное тело ошибочного ответа.
// Text заполнен для SingleMessage и DetailMessage, Fields для FieldErrorMap.
type ErrorBody struct {
	Kind   ErrorBodyKind
	Text   string
	Fields []FieldErrors
}

// Message возвращает текст для пользователя или пустую строку для Unknown
func (b ErrorBody) Message() string {
	switch b.Kind {
	case ErrorBodySingleMessage, ErrorBodyDetailMessage:
		return b.Text
	case ErrorBodyFieldErrorMap:
		return FormatFieldErrors(b.Fields)
	default:
		return ""
	}
}

// FormatFieldErrors склеивает ошибки полей в строку вида
// "original url: Enter a valid URL.; short code: Too short."
func FormatFieldErrors(fields []FieldErrors) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		name := strings.ReplaceAll(f.Field, "_", " ")
		parts = append(parts, name+": "+strings.Join(f.Messages, " "))
	}
	return strings.Join(parts, "; ")
}
