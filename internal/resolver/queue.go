package resolver

import "container/heap"

// nameQueue is a min-heap of module names. It is the ready set of Kahn's
// algorithm, so ties between independent modules break by ascending name.
type nameQueue []string

func (q nameQueue) Len() int           { return len(q) }
func (q nameQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q nameQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *nameQueue) Push(x any) { *q = append(*q, x.(string)) }

func (q *nameQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

func (q *nameQueue) push(name string) { heap.Push(q, name) }
func (q *nameQueue) pop() string      { return heap.Pop(q).(string) }
