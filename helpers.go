package wordscan

import "context"

// mapFiles runs fn for every file with at most limit files in flight and
// returns the results in the order of files. The first error cancels the
// remaining files and is returned with a nil slice.
func mapFiles[R any](
	ctx context.Context,
	cfg *config,
	query string,
	files []string,
	limit int,
	fn func(ctx context.Context, path string) (R, error),
) ([]R, error) {
	results := make([]R, len(files))
	s := newScope(ctx, cfg, query, limit)
	for i, path := range files {
		s.goFile(path, func(ctx context.Context, path string) error {
			r, err := fn(ctx, path)
			if err != nil {
				return err
			}
			results[i] = r // each task owns its index
			return nil
		})
	}
	if err := s.wait(); err != nil {
		return nil, err
	}
	return results, nil
}
