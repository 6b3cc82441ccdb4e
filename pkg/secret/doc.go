// Package secret holds key material in a buffer that is zeroed on Close.
//
// On Linux the buffer lives outside the Go heap: it is allocated with
// mmap(MAP_ANONYMOUS), locked into RAM with mlock so it is never swapped,
// and marked MADV_DONTDUMP so it does not appear in core dumps. The garbage
// collector never sees or copies it. On other platforms the buffer is an
// ordinary heap slice that is still zeroed on Close.
//
//	buf, err := secret.NewFromBytes(key) // key is zeroed in place
//	if err != nil {
//	    return err
//	}
//	defer buf.Close()
//
//	tok, err := svc.Issue(p, buf.Bytes())
//
// A Buffer must not be copied. Bytes panics after Close.
package secret
