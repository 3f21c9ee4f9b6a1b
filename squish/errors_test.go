package squish_test

import (
	"errors"
	"testing"

	"github.com/go-squish/squish/squish"
)

func TestErrorString_KnownCodes(t *testing.T) {
	cases := []struct {
		code squish.ErrorCode
		want string
	}{
		{squish.Success, "SUCCESS"},
		{squish.ErrInvalidFormat, "ERR_INVALID_FORMAT"},
		{squish.ErrBadChannelMetric, "ERR_BAD_CHANNEL_METRIC"},
		{squish.ErrBadMask, "ERR_BAD_MASK"},
		{squish.ErrShortBuffer, "ERR_SHORT_BUFFER"},
		{squish.ErrBadBlock, "ERR_BAD_BLOCK"},
	}

	for _, c := range cases {
		if got := squish.ErrorString(c.code); got != c.want {
			t.Fatalf("ErrorString(%d): got %q want %q", uint32(c.code), got, c.want)
		}
	}

	if got := squish.ErrorString(squish.ErrorCode(0xDEADBEEF)); got != "" {
		t.Fatalf("ErrorString(unknown): got %q want %q", got, "")
	}
}

func TestErrorCodeOf(t *testing.T) {
	if got := squish.ErrorCodeOf(nil); got != squish.Success {
		t.Fatalf("ErrorCodeOf(nil): got %v want %v", got, squish.Success)
	}

	dst := make([]byte, 8)
	var pixels [16]squish.Pixel
	if _, err := squish.Encode(dst, &pixels, 0xFFFF, squish.FormatBC1, squish.Vec4{}, 0); err == nil {
		t.Fatalf("Encode with zero metric: got nil error, want error")
	} else if got := squish.ErrorCodeOf(err); got != squish.ErrBadChannelMetric {
		t.Fatalf("ErrorCodeOf(zero-metric Encode): got %v want %v", got, squish.ErrBadChannelMetric)
	}

	if got := squish.ErrorCodeOf(errors.New("some other error")); got != squish.ErrBadBlock {
		t.Fatalf("ErrorCodeOf(non-squish): got %v want %v", got, squish.ErrBadBlock)
	}
}
