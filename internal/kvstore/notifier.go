package kvstore

import "sync"

// Notifier — широковещательный сигнал "состояние изменилось" без полезной
// нагрузки. Подписчик перечитывает производное состояние сам.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan struct{})}
}

// Subscribe возвращает канал сигнала и функцию отписки. Канал буферизован
// на один элемент: непрочитанные сигналы схлопываются, подписчик никогда
// не блокирует отправителя.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
	return ch, unsubscribe
}

// Notify рассылает сигнал всем подписчикам.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
