package panicerr

// Recover runs f in a new goroutine wrapped in a defer chain that recovers
// any abnormal exit or panic as a non-nil error return. Intended for guarding
// an embedding host's outermost call into the library against a foreign
// panic escaping uncontrolled.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
