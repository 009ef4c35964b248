// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"fmt"

	"github.com/strataconf/strata/parse"
)

func Example() {
	pool := New()

	base := parse.BufferString(`
[server]
host = localhost
port = 8080
`)
	override := parse.BufferString(`
[server]
port = 9090
`)

	if err := pool.Fill(parse.NewINI(base)); err != nil {
		fmt.Println(err)
		return
	}
	if err := pool.Fill(parse.NewINI(override)); err != nil {
		fmt.Println(err)
		return
	}

	host, _ := pool.Get("server.host", SectionFromKey)
	port, _ := pool.GetInt("port", "server")

	fmt.Println(host)
	fmt.Println(port)
	// Output:
	// localhost
	// 9090
}
