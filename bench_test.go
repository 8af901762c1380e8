package livelists

import (
	"fmt"
	"testing"

	"github.com/barkimedes/go-deepcopy"
	"github.com/huandu/go-clone"
)

func sequential(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func BenchmarkDiffKeys_MoveMiddle(b *testing.B) {
	sizes := []int{10, 100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size%d", size), func(b *testing.B) {
			old := sequential(size)
			new := make([]int, size)
			copy(new, old)
			// Move the middle key to the front.
			mid := new[size/2]
			copy(new[1:size/2+1], new[:size/2])
			new[0] = mid

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				diffKeys(old, new)
			}
		})
	}
}

func BenchmarkDiffKeys_Append(b *testing.B) {
	sizes := []int{10, 100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size%d", size), func(b *testing.B) {
			old := sequential(size)
			new := append(append([]int(nil), old...), size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				diffKeys(old, new)
			}
		})
	}
}

func BenchmarkDiffKeys_Disjoint(b *testing.B) {
	sizes := []int{10, 100}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size%d", size), func(b *testing.B) {
			old := sequential(size)
			new := make([]int, size)
			for i := range new {
				new[i] = size + i
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				diffKeys(old, new)
			}
		})
	}
}

type benchState struct {
	Order []string
	Texts map[string]string
}

func benchStateFixture() benchState {
	s := benchState{
		Order: make([]string, 100),
		Texts: make(map[string]string, 100),
	}
	for i := range s.Order {
		key := fmt.Sprintf("k%d", i)
		s.Order[i] = key
		s.Texts[key] = fmt.Sprintf("text for %s", key)
	}
	return s
}

func BenchmarkSnapshot_Copystructure(b *testing.B) {
	src := benchStateFixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		snapshot(src)
	}
}

func BenchmarkSnapshot_Deepcopy(b *testing.B) {
	src := benchStateFixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deepcopy.MustAnything(src)
	}
}

func BenchmarkSnapshot_GoClone(b *testing.B) {
	src := benchStateFixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clone.Clone(src)
	}
}
