package types

func (s *Array[T]) Len() int           { return len(s.Data) }
func (s *Array[T]) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }
func (s *Array[T]) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }

// RotateRight rotates Data[i:j+1] right by one: Data[j] moves to i and
// Data[i:j] shifts up one position. i == j is a no-op.
func (s *Array[T]) RotateRight(i, j int) {
	if i >= j {
		return
	}
	x := s.Data[j]
	copy(s.Data[i+1:j+1], s.Data[i:j])
	s.Data[i] = x
}
