package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Assert паникует, если condition ложно. Нарушение означает ошибку в самой библиотеке, а не у вызывающего.
func Assert(condition bool, tags ...any) {
	if condition {
		return
	}
	var b strings.Builder
	b.WriteString("#ASSERTION_FAILED")
	for _, tag := range tags {
		b.WriteString(" ")
		b.WriteString(fmt.Sprint(tag))
	}
	for skip := 1; skip <= 2; skip++ {
		if _, file, line, ok := runtime.Caller(skip); ok {
			fmt.Fprintf(&b, "\n\t%v:%v", file, line)
		}
	}
	panic(b.String())
}
