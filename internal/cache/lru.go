package cache

// lruNode is an entry in the recency list. It keeps its key so eviction
// can delete from the shard map without a search.
type lruNode struct {
	key        string
	prev, next *lruNode
}

// lruList orders keys from most (head) to least (tail) recently used.
// Not safe for concurrent use; the owning shard holds the lock.
type lruList struct {
	head, tail *lruNode
	len        int
}

func (l *lruList) pushFront(key string) *lruNode {
	n := &lruNode{key: key}
	l.linkFront(n)
	return n
}

func (l *lruList) moveToFront(n *lruNode) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// removeOldest unlinks the tail and returns its key.
func (l *lruList) removeOldest() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

func (l *lruList) linkFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
