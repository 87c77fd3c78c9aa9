package flow_test

import (
	"fmt"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/flow"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// Step identifiers of a checkout.
const (
	StepCart = iota
	StepAddress
	StepPayment
)

type Action int

const (
	ActionNext Action = iota
	ActionBack
)

type AddressResult struct {
	Action Action
	Street string
}

func isBack(result any) bool {
	switch r := result.(type) {
	case Action:
		return r == ActionBack
	case AddressResult:
		return r.Action == ActionBack
	}
	return false
}

// Example walks a three step checkout forward, backs up once and finishes.
func Example() {
	c := tracker.NewController(tracker.Settings{NumberOfPages: 3, Policy: tracker.PolicyDiscrete})
	f := flow.New(c)

	paymentVisits := 0

	f.Register(StepCart, func(input any) (any, error) {
		fmt.Println("cart")
		return ActionNext, nil
	})
	f.Register(StepAddress, func(input any) (any, error) {
		if resume, ok := input.(flow.Resume); ok {
			prev := resume.Result.(AddressResult)
			fmt.Printf("address: restored %s\n", prev.Street)
			return AddressResult{Action: ActionNext, Street: prev.Street}, nil
		}
		fmt.Println("address")
		return AddressResult{Action: ActionNext, Street: "Main St"}, nil
	})
	f.Register(StepPayment, func(input any) (any, error) {
		paymentVisits++
		if paymentVisits == 1 {
			fmt.Println("payment: back")
			return ActionBack, nil
		}
		fmt.Println("payment: done")
		return ActionNext, nil
	})

	f.OnTransition(flow.Linear(c.NumberOfPages(), isBack))

	if err := f.Run(nil); err != nil {
		fmt.Println(err)
	}
	fmt.Println("tracker at", c.CurrentPage())

	// Output:
	// cart
	// address
	// payment: back
	// address: restored Main St
	// payment: done
	// tracker at 2
}

// Example_jump moves straight to the page a screen picks.
func Example_jump() {
	c := tracker.NewController(tracker.Settings{NumberOfPages: 4, Policy: tracker.PolicyIndependent})
	f := flow.New(c)

	f.Register(0, func(input any) (any, error) {
		fmt.Println("overview: jump to 3")
		return flow.Jump{Page: 3, Input: "from overview"}, nil
	})
	f.Register(3, func(input any) (any, error) {
		fmt.Println("review:", input)
		return nil, nil
	})

	f.OnTransition(func(page int, input, result any, history *flow.History) (int, any) {
		return flow.Exit, nil
	})

	_ = f.Run(nil)
	fmt.Println("history:", f.History().Pages())

	// Output:
	// overview: jump to 3
	// review: from overview
	// history: [0]
}
