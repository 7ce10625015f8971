package ipapi

import (
	"fmt"
	"slices"
	"testing"
)

func TestChunk_SizesAndOrder(t *testing.T) {
	for _, tc := range []struct {
		n, size int
	}{
		{0, 1},
		{1, 1},
		{1, 3},
		{3, 3},
		{4, 3},
		{10, 3},
		{100, 100},
		{101, 100},
	} {
		t.Run(fmt.Sprintf("n=%d_size=%d", tc.n, tc.size), func(t *testing.T) {
			input := make([]int, tc.n)
			for i := range input {
				input[i] = i
			}

			var chunks [][]int
			for c := range chunk(slices.Values(input), tc.size) {
				chunks = append(chunks, c)
			}

			wantChunks := (tc.n + tc.size - 1) / tc.size
			if len(chunks) != wantChunks {
				t.Fatalf("expected %d chunks, got %d", wantChunks, len(chunks))
			}

			var flat []int
			for i, c := range chunks {
				if len(c) == 0 {
					t.Errorf("chunk %d is empty", i)
				}
				if len(c) > tc.size {
					t.Errorf("chunk %d has %d items, max %d", i, len(c), tc.size)
				}
				if i < len(chunks)-1 && len(c) != tc.size {
					t.Errorf("non-final chunk %d has %d items, expected %d", i, len(c), tc.size)
				}
				flat = append(flat, c...)
			}

			if !slices.Equal(flat, input) {
				t.Errorf("concatenated chunks differ from input: %v vs %v", flat, input)
			}
		})
	}
}

// Zero-value items must survive chunking: the batch endpoint accepts an empty
// query as "look up the caller", so dropping them would change the results.
func TestChunk_KeepsZeroValues(t *testing.T) {
	input := []string{"", "1.2.3.4", "", ""}

	var flat []string
	for c := range chunk(slices.Values(input), 2) {
		flat = append(flat, c...)
	}

	if !slices.Equal(flat, input) {
		t.Errorf("expected %q to survive chunking, got %q", input, flat)
	}
}

func TestChunk_StopsWhenConsumerBreaks(t *testing.T) {
	produced := 0
	source := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}

	for range chunk(source, 5) {
		break
	}

	if produced > 5 {
		t.Errorf("expected at most 5 items consumed after break, got %d", produced)
	}
}
