package utils

import (
	"encoding/json"
	"fmt"
)

// JSONCodecName is the content-subtype of the bridge's gRPC messages.
const JSONCodecName = "json"

// JSONCodec carries gRPC messages as JSON. The bridge messages are plain Go
// structs from package models, so no generated protobuf types are needed.
// It satisfies google.golang.org/grpc/encoding.Codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding grpc message: %w", err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding grpc message: %w", err)
	}
	return nil
}

func (JSONCodec) Name() string {
	return JSONCodecName
}
