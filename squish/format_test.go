package squish_test

import (
	"testing"

	"github.com/go-squish/squish/squish"
)

func TestNewFormatRejectsUnsupportedColorBits(t *testing.T) {
	_, err := squish.NewFormat(squish.Format{
		ColorBits:      [3]int{9, 9, 9},
		CodebookSize:   4,
		PartitionCount: 1,
		BlockBytes:     8,
	})
	if squish.ErrorCodeOf(err) != squish.ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat for a 9-bit channel, got %v", err)
	}
}

func TestNewFormatRejectsNoChannels(t *testing.T) {
	_, err := squish.NewFormat(squish.Format{
		CodebookSize:   4,
		PartitionCount: 1,
		BlockBytes:     8,
	})
	if squish.ErrorCodeOf(err) != squish.ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat for a format with no channels, got %v", err)
	}
}

func TestNewFormatRejectsBadBlockSize(t *testing.T) {
	_, err := squish.NewFormat(squish.Format{
		ColorBits:      [3]int{5, 6, 5},
		CodebookSize:   4,
		PartitionCount: 1,
		BlockBytes:     12,
	})
	if squish.ErrorCodeOf(err) != squish.ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat for a 12-byte block, got %v", err)
	}
}

func TestNewFormatDefaultsRotationSet(t *testing.T) {
	f, err := squish.NewFormat(squish.Format{
		ColorBits:      [3]int{5, 6, 5},
		CodebookSize:   4,
		PartitionCount: 1,
		BlockBytes:     8,
	})
	if err != nil {
		t.Fatalf("NewFormat: unexpected error %v", err)
	}
	if len(f.RotationSet) != 1 || f.RotationSet[0] != 0 {
		t.Fatalf("expected a default RotationSet of {0}, got %v", f.RotationSet)
	}
}

func TestCanonicalFormatsValidate(t *testing.T) {
	for _, f := range []squish.Format{
		squish.FormatBC1, squish.FormatBC3Alpha, squish.FormatBC7TwoSubset, squish.FormatBC7Rotated,
	} {
		if _, err := squish.NewFormat(f); err != nil {
			t.Fatalf("canonical format %q failed re-validation: %v", f.Name, err)
		}
	}
}
