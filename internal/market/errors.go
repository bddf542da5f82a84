package market

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDataset matches every *MalformedDatasetError via errors.Is.
var ErrMalformedDataset = errors.New("malformed dataset")

// MalformedDatasetError reports a structural defect in the source dataset.
// Day and District locate the defect; either may be empty when the problem
// sits above that level.
type MalformedDatasetError struct {
	Day      string
	District string
	Reason   string
}

func (e *MalformedDatasetError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrMalformedDataset.Error())
	if e.Day != "" {
		fmt.Fprintf(&sb, ": day %q", e.Day)
	}
	if e.District != "" {
		fmt.Fprintf(&sb, ", district %q", e.District)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	return sb.String()
}

// Is lets errors.Is(err, ErrMalformedDataset) match.
func (e *MalformedDatasetError) Is(target error) bool {
	return target == ErrMalformedDataset
}

func malformed(day, district, format string, args ...interface{}) error {
	return &MalformedDatasetError{
		Day:      day,
		District: district,
		Reason:   fmt.Sprintf(format, args...),
	}
}
