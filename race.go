package wordscan

import "context"

// firstMatch scans every file concurrently and returns the first value a
// task reports as found. The report halts the scope: files that have not
// started are skipped and running tasks stop at their next line or word.
// firstMatch still joins them before returning.
//
// If no task finds anything it returns (zero, false, nil). A task error
// that settles the scope before any match fails the whole search.
func firstMatch[T any](
	ctx context.Context,
	cfg *config,
	query string,
	files []string,
	fn func(ctx context.Context, path string) (T, bool, error),
) (T, bool, error) {
	var (
		zero   T
		winner T
		found  bool
	)

	s := newScope(ctx, cfg, query, cfg.ioLimit)
	for _, path := range files {
		s.goFile(path, func(ctx context.Context, path string) error {
			v, ok, err := fn(ctx, path)
			if err != nil {
				return err
			}
			// Only the task that wins the halt writes winner.
			if ok && s.halt() {
				winner, found = v, true
			}
			return nil
		})
	}

	if err := s.wait(); err != nil {
		return zero, false, err
	}
	return winner, found, nil
}
