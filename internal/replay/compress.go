package replay

// Compress clamps every inter-action delay above MaxDelay down to exactly
// MaxDelay. Action order and kinds are untouched, delays at or below the
// ceiling are kept as recorded, and the transform is idempotent. Applied
// once, at save time; never during live recording or playback.
func Compress(r Record) Record {
	out := r.Clone()
	for i := range out.Actions {
		if out.Actions[i].Delay > MaxDelay {
			out.Actions[i].Delay = MaxDelay
		}
	}
	return out
}
