package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInputLine(t *testing.T) {
	if s, _ := inputLine([]string{"n", "+", "n"}, strings.NewReader("ignored")); s != "n + n" {
		t.Errorf("expected arguments to be joined, have %q", s)
	}
	if s, _ := inputLine(nil, strings.NewReader("n*n\r\nnext\n")); s != "n*n" {
		t.Errorf("expected first line of input, have %q", s)
	}
	if s, err := inputLine(nil, strings.NewReader("n")); s != "n" || err != nil {
		t.Errorf("expected unterminated line to be read, have %q, %v", s, err)
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.cli")
	defer teardown()
	//
	for _, x := range []struct {
		args   []string
		output string
	}{
		{[]string{"ll", "n+"}, "$E\tn+$\t1\n$AT\tn+$\t5\n$ABF\tn+$\t10\n$ABn\tn+$\tmatch\n" +
			"$AB\t+$\t8\n$A\t+$\t2\n$AT+\t+$\tmatch\n$AT\t$\terror\n"},
		{[]string{"lr", "n+"}, "shift\n8\n6\n3\nshift\nerror\n"},
		{[]string{"lr", ")"}, "error\n"},
	} {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(x.args)
		if err := Execute(); err != nil {
			t.Fatal(err)
		}
		if out.String() != x.output {
			t.Errorf("%v: unexpected output\n%s", x.args, out.String())
		}
	}
}
