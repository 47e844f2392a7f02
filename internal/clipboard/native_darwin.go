//go:build darwin && cgo

package clipboard

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
// #include <stdlib.h>
// #include <string.h>
//
// static long cliper_change_count(void) {
//     return (long)[[NSPasteboard generalPasteboard] changeCount];
// }
//
// // NUL-separated public.file-url strings of every pasteboard item.
// static char *cliper_file_urls(int *out_len) {
//     @autoreleasepool {
//         NSMutableData *buf = [NSMutableData data];
//         for (NSPasteboardItem *item in [[NSPasteboard generalPasteboard] pasteboardItems]) {
//             NSString *s = [item stringForType:@"public.file-url"];
//             if (s == nil) continue;
//             const char *u = [s UTF8String];
//             if (u == NULL) continue;
//             [buf appendBytes:u length:strlen(u) + 1];
//         }
//         *out_len = (int)[buf length];
//         if (*out_len == 0) return NULL;
//         char *out = malloc(*out_len);
//         memcpy(out, [buf bytes], *out_len);
//         return out;
//     }
// }
//
// static void *cliper_read_rtf(int *out_len) {
//     @autoreleasepool {
//         *out_len = 0;
//         for (NSPasteboardItem *item in [[NSPasteboard generalPasteboard] pasteboardItems]) {
//             NSData *d = [item dataForType:NSPasteboardTypeRTF];
//             if (d == nil || [d length] == 0) continue;
//             *out_len = (int)[d length];
//             void *out = malloc(*out_len);
//             memcpy(out, [d bytes], *out_len);
//             return out;
//         }
//         return NULL;
//     }
// }
//
// // Adds RTF to the current contents; the plain text written before stays.
// static int cliper_write_rtf(const void *data, int len) {
//     @autoreleasepool {
//         NSPasteboard *pb = [NSPasteboard generalPasteboard];
//         NSData *d = [NSData dataWithBytes:data length:len];
//         [pb addTypes:@[NSPasteboardTypeRTF] owner:nil];
//         return [pb setData:d forType:NSPasteboardTypeRTF] ? 1 : 0;
//     }
// }
//
// static int cliper_write_file_ref(const char *path) {
//     @autoreleasepool {
//         NSPasteboard *pb = [NSPasteboard generalPasteboard];
//         [pb clearContents];
//         NSURL *url = [NSURL fileURLWithPath:[NSString stringWithUTF8String:path]];
//         return [pb writeObjects:@[url]] ? 1 : 0;
//     }
// }
import "C"

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"unsafe"

	"golang.design/x/clipboard"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// darwinBackend reads the NSPasteboard change counter, file URLs and RTF
// directly and delegates text and image I/O to golang.design/x/clipboard.
type darwinBackend struct {
	log *logger.Logger
}

// newNative returns the macOS clipboard backend.
// clipboard.Init is called here rather than in init() so that commands that
// never construct a Backend don't log spurious warnings.
func newNative(log *logger.Logger) (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &darwinBackend{log: log}, nil
}

func (b *darwinBackend) Name() string { return "macOS NSPasteboard" }

func (b *darwinBackend) ChangeCount() (int64, error) {
	return int64(C.cliper_change_count()), nil
}

func (b *darwinBackend) FileURLs() ([]string, error) {
	var n C.int
	p := C.cliper_file_urls(&n)
	if p == nil {
		return nil, nil
	}
	defer C.free(unsafe.Pointer(p))

	raw := C.GoBytes(unsafe.Pointer(p), n)
	var urls []string
	for _, part := range bytes.Split(bytes.TrimSuffix(raw, []byte{0}), []byte{0}) {
		if len(part) > 0 {
			urls = append(urls, string(part))
		}
	}
	return urls, nil
}

func (b *darwinBackend) RTF() ([]byte, error) {
	var n C.int
	p := C.cliper_read_rtf(&n)
	if p == nil {
		return nil, nil
	}
	defer C.free(p)
	return C.GoBytes(p, n), nil
}

func (b *darwinBackend) Text() (string, bool, error) {
	text := clipboard.Read(clipboard.FmtText)
	if text == nil {
		return "", false, nil
	}
	return string(text), true, nil
}

func (b *darwinBackend) Image() (image.Image, error) {
	return readImage()
}

func (b *darwinBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *darwinBackend) WriteRTF(rtf []byte) error {
	if len(rtf) == 0 {
		return nil
	}
	ok := C.cliper_write_rtf(unsafe.Pointer(&rtf[0]), C.int(len(rtf)))
	if ok == 0 {
		return errors.New("pasteboard rejected RTF data")
	}
	return nil
}

func (b *darwinBackend) WriteImage(img image.Image) error {
	return writeImage(img)
}

func (b *darwinBackend) WriteFileRef(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	if C.cliper_write_file_ref(cpath) == 0 {
		return fmt.Errorf("pasteboard rejected file reference %q", path)
	}
	return nil
}

func (b *darwinBackend) Close() error { return nil }
