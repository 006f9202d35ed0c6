// Package api defines the carregistry.RentalService wire contract: message
// types, the service descriptor and a typed client. Messages travel as JSON
// using a gRPC codec registered under the "json" content subtype.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (Codec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
