//go:build darwin

package filesystem

import (
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func platformAttributes(_ string, info FileInfo) Attributes {
	attrs := Attributes{Hidden: IsDotfile(info.Name())}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return attrs
	}
	if st.Flags&unix.UF_HIDDEN != 0 {
		attrs.Hidden = true
	}
	attrs.Accessed = timePtr(time.Unix(st.Atimespec.Unix()))
	attrs.Created = timePtr(time.Unix(st.Birthtimespec.Unix()))
	return attrs
}
