package comm

// Broadcast sends value from root to every process. Only root's value
// is observed; other callers may pass the zero value.
func Broadcast[T any](p *Process, root int, value T) (T, error) {
	var zero T
	contributions, err := p.rendezvous(value)
	if err != nil {
		return zero, err
	}
	return contributions[root].(T), nil
}

// Scatter splits sendData, which must have length Size() and is only
// observed on root, one element per destination rank. Every process
// receives sendData[rank] on return.
func Scatter[T any](p *Process, root int, sendData []T) (T, error) {
	var zero T
	contributions, err := p.rendezvous(sendData)
	if err != nil {
		return zero, err
	}
	rootData := contributions[root].([]T)
	return rootData[p.rank], nil
}

// Gather is the inverse of Scatter: every process contributes one
// value, and root alone receives the Size()-length slice of all of
// them, ordered by rank. Non-root callers get nil.
func Gather[T any](p *Process, root int, value T) ([]T, error) {
	contributions, err := p.rendezvous(value)
	if err != nil {
		return nil, err
	}
	if p.rank != root {
		return nil, nil
	}
	out := make([]T, len(contributions))
	for r, c := range contributions {
		out[r] = c.(T)
	}
	return out, nil
}

// AllToAll is personalized all-to-all: sendData must have length
// Size(), sendData[d] being the message for destination rank d. The
// returned slice has recvData[s] equal to what rank s sent this rank.
func AllToAll[T any](p *Process, sendData []T) ([]T, error) {
	contributions, err := p.rendezvous(sendData)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(contributions))
	for src, c := range contributions {
		out[src] = c.([]T)[p.rank]
	}
	return out, nil
}

// alltoallvPayload is one rank's contribution to a variable-size
// personalized exchange: sendCounts[d] items are destined for rank d,
// packed contiguously into Data in destination-rank order.
type alltoallvPayload[T any] struct {
	SendCounts []int
	Data       []T
}

// AllToAllVariable is the variable-size counterpart of AllToAll,
// matching spec.md §6's all_to_all_variable(send_counts, send_offsets
// -> recv_counts, recv_offsets): each rank sends a different number of
// items to each destination. sendCounts[d] is how many of the leading
// elements of sendData (packed in destination-rank order: all items
// for rank 0, then all for rank 1, ...) go to rank d.
//
// Returns, for the calling rank: recvCounts[s] (how many items rank s
// sent it) and the concatenation of those items in source-rank order.
func AllToAllVariable[T any](p *Process, sendCounts []int, sendData []T) (recvCounts []int, recvData []T, err error) {
	payload := alltoallvPayload[T]{SendCounts: sendCounts, Data: sendData}
	contributions, err := p.rendezvous(payload)
	if err != nil {
		return nil, nil, err
	}

	size := len(contributions)
	recvCounts = make([]int, size)
	for src := 0; src < size; src++ {
		sp := contributions[src].(alltoallvPayload[T])
		recvCounts[src] = sp.SendCounts[p.rank]
	}

	for src := 0; src < size; src++ {
		sp := contributions[src].(alltoallvPayload[T])
		offset := 0
		for d := 0; d < p.rank; d++ {
			offset += sp.SendCounts[d]
		}
		count := sp.SendCounts[p.rank]
		recvData = append(recvData, sp.Data[offset:offset+count]...)
	}
	return recvCounts, recvData, nil
}
