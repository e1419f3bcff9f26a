package grid

type queueItem struct {
	cell       Point
	gScore     int
	fScore     int
	queueIndex int
}

type priorityQueue []*queueItem

func (q priorityQueue) Len() int           { return len(q) }
func (q priorityQueue) Less(i, j int) bool { return q[i].fScore < q[j].fScore }
func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].queueIndex = i
	q[j].queueIndex = j
}

func (q *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.queueIndex = len(*q)
	*q = append(*q, item)
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
