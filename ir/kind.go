package ir

import "fmt"

type Kind int

const (
	KindDocument Kind = iota
	KindChecksum
	KindUsingDirective
	KindExpression
	KindStatement
	KindHtmlContent
	KindHtmlAttribute
	KindHtmlAttributeValue
	KindExpressionAttributeValue
	KindStatementAttributeValue
	KindToken
	KindExtension
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindDocument:                 "Document",
		KindChecksum:                 "Checksum",
		KindUsingDirective:           "UsingDirective",
		KindExpression:               "Expression",
		KindStatement:                "Statement",
		KindHtmlContent:              "HtmlContent",
		KindHtmlAttribute:            "HtmlAttribute",
		KindHtmlAttributeValue:       "HtmlAttributeValue",
		KindExpressionAttributeValue: "ExpressionAttributeValue",
		KindStatementAttributeValue:  "StatementAttributeValue",
		KindToken:                    "Token",
		KindExtension:                "Extension",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Document":                 KindDocument,
		"Checksum":                 KindChecksum,
		"UsingDirective":           KindUsingDirective,
		"Expression":               KindExpression,
		"Statement":                KindStatement,
		"HtmlContent":              KindHtmlContent,
		"HtmlAttribute":            KindHtmlAttribute,
		"HtmlAttributeValue":       KindHtmlAttributeValue,
		"ExpressionAttributeValue": KindExpressionAttributeValue,
		"StatementAttributeValue":  KindStatementAttributeValue,
		"Token":                    KindToken,
		"Extension":                KindExtension,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindDocument,
		KindChecksum,
		KindUsingDirective,
		KindExpression,
		KindStatement,
		KindHtmlContent,
		KindHtmlAttribute,
		KindHtmlAttributeValue,
		KindExpressionAttributeValue,
		KindStatementAttributeValue,
		KindToken,
		KindExtension,
	}
}

// Lang flags a Token as belonging to the host language or to the markup
// side of a template.
type Lang int

const (
	LangHost Lang = iota
	LangMarkup
)

func (l Lang) String() string {
	switch l {
	case LangHost:
		return "host"
	case LangMarkup:
		return "markup"
	default:
		return "<unknown lang>"
	}
}

func (l Lang) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Lang) UnmarshalText(d []byte) error {
	switch string(d) {
	case "host":
		*l = LangHost
	case "markup":
		*l = LangMarkup
	default:
		return fmt.Errorf("unrecognized lang %q", d)
	}
	return nil
}
