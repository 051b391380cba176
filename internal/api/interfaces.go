package api

import (
	"context"

	"github.com/ytget/colock-player/internal/model"
)

// Converter defines the interface for the conversion endpoint.
type Converter interface {
	GetColockLanguage(ctx context.Context, req model.ConversionRequest) (string, error)
}

// VoiceGenerator defines the interface for the voice generation endpoint.
type VoiceGenerator interface {
	GenerateVoice(ctx context.Context, req model.VoiceRequest) (*model.AudioAsset, error)
}
