package effects

// EventWithArg is a multi-cast event carrying one value. Listeners run in
// registration order on the invoking goroutine.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
