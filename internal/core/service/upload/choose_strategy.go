package upload

import "vodcore/internal/core/domain"

// ChooseStrategy picks single-shot below the chunked threshold and chunked at
// or above it
func (u *uploadService) ChooseStrategy(sizeBytes int64) domain.UploadStrategy {
	if sizeBytes < u.cfg.ChunkedThreshold {
		return domain.UploadStrategySingle
	}
	return domain.UploadStrategyChunked
}
