// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package flagset_test

import (
	"errors"
	"fmt"
	"sync"

	"fillmore-labs.com/flagset"
)

type Weekday uint8

const (
	Monday Weekday = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	weekdayOnce  sync.Once
	weekdayFlags *flagset.Binding[Weekday]
)

func (Weekday) FlagBinding() *flagset.Binding[Weekday] {
	weekdayOnce.Do(func() {
		weekdayFlags = flagset.MustBind("Weekday", []flagset.Named[Weekday]{
			{"Monday", Monday},
			{"Tuesday", Tuesday},
			{"Wednesday", Wednesday},
			{"Thursday", Thursday},
			{"Friday", Friday},
			{"Saturday", Saturday},
			{"Sunday", Sunday},
		}, flagset.WithDefault("Monday", "Tuesday", "Wednesday", "Thursday", "Friday"))
	})

	return weekdayFlags
}

func Example() {
	workdays := flagset.Default[Weekday]()
	weekend := workdays.Complement()

	fmt.Println(weekend)
	fmt.Println(workdays.Has(Wednesday), weekend.Len())

	for day := range flagset.Of(Sunday, Monday).Values() {
		fmt.Printf("%08b\n", day)
	}

	// Output:
	// Saturday | Sunday
	// true 2
	// 00000001
	// 01000000
}

func ExampleFromBits() {
	days, err := flagset.FromBits[Weekday](0b1000_0011)

	var fe *flagset.FromBitsError[Weekday]
	if errors.As(err, &fe) {
		fmt.Println(err)
		fmt.Println(fe.Truncate())
	}

	fmt.Println(days.IsEmpty())

	// Output:
	// invalid bits for Weekday: 0b10000000
	// Monday | Tuesday
	// true
}

func ExampleSet_Format() {
	s := flagset.Of(Tuesday, Friday)

	fmt.Printf("%v\n", s)
	fmt.Printf("%#v\n", s)
	fmt.Printf("%#04x\n", s)

	// Output:
	// Tuesday | Friday
	// Set[Weekday](0b10010, Tuesday | Friday)
	// 0x12
}

func ExampleParse() {
	s, err := flagset.Parse[Weekday]("Saturday | Sunday")
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(s.Uint64())

	// Output:
	// 96
}
