package dispatch_test

import (
	"fmt"

	"github.com/dmitrymomot/dispatch"
)

func ExampleNew() {
	reg := dispatch.New()
	defer reg.Close()

	reg.Register("user.created", dispatch.PriorityNormal,
		func(owner, data any) dispatch.Action {
			fmt.Println("welcome email for", data)
			return dispatch.Continue
		}, nil)

	reg.Trigger("user.created", "u-42")
	// Output: welcome email for u-42
}

func ExampleRegistry_Register_priorities() {
	reg := dispatch.New()
	defer reg.Close()

	reg.Register("conn.lost", 10, func(owner, data any) dispatch.Action {
		fmt.Println("log the drop")
		return dispatch.Continue
	}, nil)
	reg.Register("conn.lost", 200, func(owner, data any) dispatch.Action {
		fmt.Println("pause the sender")
		return dispatch.Continue
	}, nil)

	reg.Trigger("conn.lost", nil)
	// Output:
	// pause the sender
	// log the drop
}

func ExampleRegistry_RegisterOnce() {
	reg := dispatch.New()
	defer reg.Close()

	reg.RegisterOnce("boot.done", dispatch.PriorityNormal,
		func(owner, data any) dispatch.Action {
			fmt.Println("warm the cache")
			return dispatch.Continue
		}, nil)

	reg.Trigger("boot.done", nil)
	reg.Trigger("boot.done", nil)
	// Output: warm the cache
}

func ExampleRegistry_Trigger_stop() {
	reg := dispatch.New()
	defer reg.Close()

	reg.Register("msg.received", 100, func(owner, data any) dispatch.Action {
		if data == "spam" {
			fmt.Println("dropped")
			return dispatch.Stop
		}
		return dispatch.Continue
	}, nil)
	reg.Register("msg.received", 10, func(owner, data any) dispatch.Action {
		fmt.Println("delivered:", data)
		return dispatch.Continue
	}, nil)

	reg.Trigger("msg.received", "spam")
	reg.Trigger("msg.received", "hello")
	// Output:
	// dropped
	// delivered: hello
}

func ExampleRegistry_Unregister() {
	reg := dispatch.New()
	defer reg.Close()

	type session struct{ id string }
	sess := &session{id: "s-1"}

	reg.Register("key.pressed", dispatch.PriorityNormal, func(owner, data any) dispatch.Action {
		return dispatch.Continue
	}, sess)
	reg.Register("key.released", dispatch.PriorityNormal, func(owner, data any) dispatch.Action {
		return dispatch.Continue
	}, sess)

	fmt.Println("removed:", reg.Unregister("", nil, sess))
	fmt.Println("left:", reg.Count())
	// Output:
	// removed: 2
	// left: 0
}

func ExampleRegistry_TriggerDeferred() {
	reg := dispatch.New(dispatch.WithDeferredQueue(16))
	defer reg.Close()

	reg.Register("sensor.reading", dispatch.PriorityNormal,
		func(owner, data any) dispatch.Action {
			fmt.Println("reading:", data)
			return dispatch.Continue
		}, nil)

	// Producer side: enqueue without dispatching.
	reg.TriggerDeferred("sensor.reading", 21)
	reg.TriggerDeferred("sensor.reading", 22)

	// Consumer side: drain on this goroutine.
	drained := reg.Pump()
	fmt.Println("drained:", drained)
	// Output:
	// reading: 21
	// reading: 22
	// drained: 2
}
