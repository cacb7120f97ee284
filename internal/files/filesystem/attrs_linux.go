//go:build linux

package filesystem

import (
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func platformAttributes(path string, info FileInfo) Attributes {
	attrs := Attributes{Hidden: IsDotfile(info.Name())}

	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_ATIME|unix.STATX_BTIME, &stx)
	if err == nil {
		if stx.Mask&unix.STATX_ATIME != 0 {
			attrs.Accessed = timePtr(time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec)))
		}
		if stx.Mask&unix.STATX_BTIME != 0 {
			attrs.Created = timePtr(time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)))
		}
		return attrs
	}

	// statx is missing on old kernels; stat(2) still has the access time.
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		attrs.Accessed = timePtr(time.Unix(st.Atim.Unix()))
	}
	return attrs
}
