package domain

import "errors"

// ErrMissingFilename is an error thrown when no filename is provided
var ErrMissingFilename = errors.New("missing filename")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type")

// ErrFileSizeTooBig is an error thrown when declared size exceeds the ceiling
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrFileSizeTooSmall is an error thrown when declared size is below the chunked threshold
var ErrFileSizeTooSmall = errors.New("file size too small")

// ErrSessionNotFound is an error thrown when upload session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionClosed is an error thrown when acting on a completed session
var ErrSessionClosed = errors.New("session already closed")

// ErrVideoNotFound is an error thrown when video record is not found
var ErrVideoNotFound = errors.New("video not found")

// ErrTaskNotFound is an error thrown when enrichment task is not found
var ErrTaskNotFound = errors.New("task not found")

// ErrDuplicatePart is an error thrown when parts are duplicated
var ErrDuplicatePart = errors.New("duplicate part")

// ErrMismatchNBParts is an error thrown when nb parts mismatch
var ErrMismatchNBParts = errors.New("mismatched number of parts")

// ErrInvalidPartNumber is an error thrown when a part number is out of range
var ErrInvalidPartNumber = errors.New("invalid part number")

// ErrInvalidSignature is an error thrown when a webhook signature fails verification
var ErrInvalidSignature = errors.New("invalid webhook signature")

// ErrMalformedEvent is an error thrown when a webhook body cannot be parsed
var ErrMalformedEvent = errors.New("malformed webhook event")

// ErrAssetNotFound is an error thrown when the asset processor has no such asset
var ErrAssetNotFound = errors.New("asset not found")

// ErrProviderNotConfigured is an error thrown when a transcription provider lacks credentials
var ErrProviderNotConfigured = errors.New("provider not configured")

// ErrUnknownColumn is an error thrown when an update touches a column the schema does not have
var ErrUnknownColumn = errors.New("unknown column")
