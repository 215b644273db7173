package model

import ai "github.com/spetersoncode/visualizer"

// ImagePricing contains image generation pricing (USD).
// Different providers use different pricing models.
type ImagePricing struct {
	// PerImage is a flat per-image price (Google).
	PerImage float64
	// LowQuality is the price for low quality images (OpenAI).
	LowQuality float64
	// MediumQuality is the price for medium quality images (OpenAI).
	MediumQuality float64
	// HighQuality is the price for high quality images (OpenAI).
	HighQuality float64
}

// HasQualityTiers returns true if the model has quality-based pricing tiers.
func (p ImagePricing) HasQualityTiers() bool {
	return p.LowQuality > 0 || p.MediumQuality > 0 || p.HighQuality > 0
}

// HasFlatPricing returns true if the model uses flat per-image pricing.
func (p ImagePricing) HasFlatPricing() bool {
	return p.PerImage > 0
}

// PerImageAt returns the price of one image at quality q. Flat-priced
// models ignore q; tiered models price auto and unset quality as medium.
func (p ImagePricing) PerImageAt(q ai.ImageQuality) float64 {
	if p.HasFlatPricing() {
		return p.PerImage
	}
	switch q {
	case ai.ImageQualityLow:
		return p.LowQuality
	case ai.ImageQualityHigh:
		return p.HighQuality
	default:
		return p.MediumQuality
	}
}
