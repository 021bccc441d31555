package selection

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/textfield/native"
)

type call struct{ start, end int }

type fakeHandle struct {
	live     native.Selection
	readErr  error
	writeErr error
	writes   []call
}

func (h *fakeHandle) Value() string       { return "hello world" }
func (h *fakeHandle) SetValue(string)     {}
func (h *fakeHandle) Placeholder() string { return "" }
func (h *fakeHandle) SelectAll() error    { return nil }
func (h *fakeHandle) Focus()              {}
func (h *fakeHandle) Blur()               {}
func (h *fakeHandle) Width() int          { return 0 }

func (h *fakeHandle) Selection() (native.Selection, error) {
	if h.readErr != nil {
		return native.Selection{}, h.readErr
	}
	return h.live, nil
}

func (h *fakeHandle) SetSelectionRange(start, end int) error {
	if h.writeErr != nil {
		return h.writeErr
	}
	h.writes = append(h.writes, call{start, end})
	h.live = native.Selection{Start: start, End: end}
	return nil
}

func TestApply_NoWriteWhenInSync(t *testing.T) {
	cases := []struct {
		live   native.Selection
		target Range
	}{
		{live: native.Selection{Start: 0, End: 0}, target: At(0)},
		{live: native.Selection{Start: 3, End: 3}, target: At(3)},
		{live: native.Selection{Start: 2, End: 5}, target: Span(2, 5)},
		{live: native.Selection{Start: 4, End: 4}, target: Span(4, 4)},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.target), func(t *testing.T) {
			h := &fakeHandle{live: tc.live}
			got := NewSynchronizer(nil).Apply(h, &tc.target)
			require.Equal(t, InSync, got)
			require.Empty(t, h.writes)
		})
	}
}

func TestApply_OneWriteWhenStale(t *testing.T) {
	cases := []struct {
		live   native.Selection
		target Range
		want   call
	}{
		{live: native.Selection{Start: 0, End: 0}, target: Span(2, 5), want: call{2, 5}},
		{live: native.Selection{Start: 0, End: 0}, target: At(4), want: call{4, 4}},
		{live: native.Selection{Start: 4, End: 6}, target: At(4), want: call{4, 4}},
		{live: native.Selection{Start: 1, End: 1}, target: Span(0, 1), want: call{0, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.target), func(t *testing.T) {
			h := &fakeHandle{live: tc.live}
			got := NewSynchronizer(nil).Apply(h, &tc.target)
			require.Equal(t, Applied, got)
			require.Equal(t, []call{tc.want}, h.writes)
		})
	}
}

func TestApply_SecondPassIsInSync(t *testing.T) {
	h := &fakeHandle{}
	s := NewSynchronizer(nil)
	target := Span(2, 5)

	require.Equal(t, Applied, s.Apply(h, &target))
	require.Equal(t, InSync, s.Apply(h, &target))
	require.Len(t, h.writes, 1)
}

func TestApply_NilTargetSkipped(t *testing.T) {
	h := &fakeHandle{readErr: native.ErrUnsupported}
	require.Equal(t, Skipped, NewSynchronizer(nil).Apply(h, nil))
	require.Equal(t, Skipped, NewSynchronizer(nil).Apply(nil, &Range{}))
}

func TestApply_UnsupportedIsSuppressed(t *testing.T) {
	var buf bytes.Buffer
	s := NewSynchronizer(log.New(&buf, "", 0))
	target := At(1)

	read := &fakeHandle{readErr: fmt.Errorf("email input: %w", native.ErrUnsupported)}
	require.Equal(t, Rejected, s.Apply(read, &target))

	write := &fakeHandle{writeErr: fmt.Errorf("number input: %w", native.ErrUnsupported)}
	require.Equal(t, Rejected, s.Apply(write, &target))
	require.Empty(t, write.writes)

	require.Contains(t, buf.String(), "selection read rejected")
	require.Contains(t, buf.String(), "selection write [1,1] rejected")
}

func TestIsStale(t *testing.T) {
	require.False(t, IsStale(nil, native.Selection{Start: 1, End: 2}))
	r := At(2)
	require.True(t, IsStale(&r, native.Selection{Start: 2, End: 3}))
	require.False(t, IsStale(&r, native.Selection{Start: 2, End: 2}))
}
