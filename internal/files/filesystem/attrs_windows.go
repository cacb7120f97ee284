//go:build windows

package filesystem

import (
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

func platformAttributes(_ string, info FileInfo) Attributes {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return Attributes{}
	}
	return Attributes{
		Accessed: timePtr(time.Unix(0, data.LastAccessTime.Nanoseconds())),
		Created:  timePtr(time.Unix(0, data.CreationTime.Nanoseconds())),
		Hidden:   data.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0,
	}
}
