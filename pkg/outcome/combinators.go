package outcome

// Map transforms the success value; a failure passes through with its
// payload unchanged.
func Map[E, A, B any](r Outcome[E, A], onSuccess func(A) B) Outcome[E, B] {
	if r.isOk {
		return Ok[E](onSuccess(r.value))
	}
	return Err[E, B](r.failure)
}

// MapErr transforms the failure value; a success passes through with its
// payload unchanged.
func MapErr[E, F, A any](r Outcome[E, A], onFailure func(E) F) Outcome[F, A] {
	if r.isOk {
		return Ok[F](r.value)
	}
	return Err[F, A](onFailure(r.failure))
}

// Chain composes a function that itself returns an Outcome. On failure the
// original failure is returned and onSuccess is never invoked. Both steps
// must agree on the failure type; adapt with MapErr first when they differ.
func Chain[E, A, B any](r Outcome[E, A], onSuccess func(A) Outcome[E, B]) Outcome[E, B] {
	if r.isOk {
		return onSuccess(r.value)
	}
	return Err[E, B](r.failure)
}

// Match reduces the outcome to a value of type B, invoking exactly one of
// the two handlers.
func Match[E, A, B any](r Outcome[E, A], onFailure func(E) B, onSuccess func(A) B) B {
	if r.isOk {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}
