//go:build !linux && !darwin && !windows

package filesystem

func platformAttributes(_ string, info FileInfo) Attributes {
	return Attributes{Hidden: IsDotfile(info.Name())}
}
