package codec

import (
	"strings"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// Encodings lists the supported output encodings.
var Encodings = []string{jsonFormat, yamlFormat}

// EncoderFor returns the encoder for the named encoding.
func EncoderFor(name string) (domain.Encoder, error) {
	switch strings.ToLower(name) {
	case jsonFormat, "":
		return NewJSONEncoder(), nil
	case yamlFormat, "yml":
		return NewYAMLEncoder(), nil
	default:
		return nil, &domain.ConfigError{Option: "encoding", Value: name, Allowed: Encodings}
	}
}
