/*
Package tracing provides request tracing for the HTTP surface.

Every request carries an X-Request-ID. An incoming value is propagated,
otherwise a UUID is generated. The id is stored in the request context,
echoed in the response header, and written with the access log line the
tracer emits once the request finishes.

	tracer := tracing.New("catos", logger.Logger)
	defer tracer.Close()
	router.Use(tracing.HTTPMiddleware(tracer))

Spans are handed to a buffered collector so logging never blocks a
handler. When the buffer is full the span is dropped with a warning.
*/
package tracing
