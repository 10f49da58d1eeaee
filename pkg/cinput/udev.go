/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "github.com/jupiterrider/ffi"

var (
	fnUdevNew   ffi.Fun
	fnUdevUnref ffi.Fun
)

func registerUdevFunctions() error {
	return prepare(libUdev, []symbol{
		// struct udev* udev_new(void)
		{&fnUdevNew, "udev_new", &ffi.TypePointer, nil},
		// struct udev* udev_unref(struct udev*)
		{&fnUdevUnref, "udev_unref", &ffi.TypePointer, argPtr},
	})
}

// UdevNew creates a udev handle. Returns 0 on failure.
func UdevNew() Udev {
	if loadErr != nil {
		return 0
	}
	var ret uintptr
	fnUdevNew.Call(&ret)
	return Udev(ret)
}

// UdevUnref drops one udev reference.
func UdevUnref(u Udev) {
	callPtr(fnUdevUnref, uintptr(u))
}
