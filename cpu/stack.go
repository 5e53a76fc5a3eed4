package cpu

// Stack is a bounded LIFO of register values. A push onto a full stack
// is a silent no-op and a pop from an empty stack yields 0.0, so
// genomes can use stacks freely without faulting.
type Stack struct {
	Data []float64
}

func (s *Stack) Push(value float64) {
	if len(s.Data) >= STACK_LIMIT {
		return
	}
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value float64) {
	if s.Empty() {
		return
	}

	value = s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Peek() (value float64, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
