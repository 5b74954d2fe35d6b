package texdecode

import "errors"

// Kind is a decoder error taxonomy, equivalent in spirit to the teacher
// package's astcenc_error codes but scoped to this decoder's failure modes.
type Kind uint32

const (
	// KindNone is the zero value; KindOf returns it for a nil error.
	KindNone Kind = iota

	// KindUnsupportedFormat covers a container format identifier absent from
	// the registry, or a compressed kernel requested for a raw format (or
	// vice versa) where the operation disallows it.
	KindUnsupportedFormat

	// KindLengthMismatch covers an encoded buffer whose length is not a
	// multiple of the format's block size, or a single-block input of the
	// wrong size.
	KindLengthMismatch

	// KindTruncated covers a stream that ended before the required byte count.
	KindTruncated

	// KindInvalidShape covers a single-block output slot that is not 4x4, or
	// an image or mip level with a non-positive width or height.
	KindInvalidShape

	// KindCancelled covers an operation aborted via its cancellation handle.
	KindCancelled

	// KindMalformedContainer covers unrecognized container magic bytes, or a
	// KTX2 level whose Zstd payload fails to inflate.
	KindMalformedContainer
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindLengthMismatch:
		return "length mismatch"
	case KindTruncated:
		return "truncated"
	case KindInvalidShape:
		return "invalid shape"
	case KindCancelled:
		return "cancelled"
	case KindMalformedContainer:
		return "malformed container"
	default:
		return "unknown"
	}
}

// Error is a typed decoder error carrying a Kind, matching the taxonomy in
// spec section 7. Errors are observable values: the core never logs them.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return "texdecode: " + e.Msg
	}
	return "texdecode: " + e.Kind.String()
}

// Is allows errors.Is(err, ErrCancelled) and friends to match any *Error
// with the same Kind, regardless of message.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return te.Kind == e.Kind
	}
	return false
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf returns the Kind carried by err, or KindNone if err is nil or not
// a decoder *Error.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// Sentinel errors usable with errors.Is; each carries only a Kind so any
// wrapped decoder error with a matching Kind compares equal.
var (
	ErrUnsupportedFormat  = &Error{Kind: KindUnsupportedFormat}
	ErrLengthMismatch     = &Error{Kind: KindLengthMismatch}
	ErrTruncated          = &Error{Kind: KindTruncated}
	ErrInvalidShape       = &Error{Kind: KindInvalidShape}
	ErrCancelled          = &Error{Kind: KindCancelled}
	ErrMalformedContainer = &Error{Kind: KindMalformedContainer}
)
