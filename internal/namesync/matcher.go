package namesync

// matchDirectory runs the matching pass for one mirrored directory pair.
//
// Every source file is matched in listing order against the target files
// that satisfy the predicate and are not yet claimed in the accumulated
// result. Exactly one candidate claims an immediate rename to the source
// stem; zero candidates copy the source file in; two or more defer to the
// collision list. Renames and copies hit the filesystem immediately — a dry
// run is a caller substituting a recording filesystem, not engine state.
func (s *Syncer) matchDirectory(sourceDir, targetDir string, result *Result) error {
	s.emit(DirStarted{Source: sourceDir, Target: targetDir})

	exists, err := s.FS.DirExists(targetDir)
	if err != nil {
		return err
	}

	// Mirror newly introduced source subdirectories before listing
	if !exists {
		err = s.FS.MkdirAll(targetDir)
		if err != nil {
			return err
		}
	}

	sourceFiles, err := s.listDescriptors(sourceDir)
	if err != nil {
		return err
	}

	targetFiles, err := s.listDescriptors(targetDir)
	if err != nil {
		return err
	}

	for _, source := range sourceFiles {
		candidates := make([]Descriptor, 0)

		for _, target := range targetFiles {
			if s.Match(source, target) && !result.Claimed(target) {
				candidates = append(candidates, target)
			}
		}

		switch len(candidates) {
		case 1:
			err = s.claimRename(source, candidates[0], result)
		case 0:
			err = s.copyUnmatched(source, targetDir)
		default:
			result.addCollision(source, candidates)
			s.emit(CollisionFound{Source: source.FullPath(), Candidates: len(candidates)})
		}

		if err != nil {
			return err
		}

		s.processed++
		s.notify(source.FullPath())
		s.emit(FileProcessed{Path: source.FullPath()})
	}

	return nil
}

// claimRename renames the single matching target to the source stem and
// marks it claimed so no later source file can match it again. A target
// already carrying the wanted name is claimed without touching the
// filesystem, which keeps a re-run of an aligned tree change-free.
func (s *Syncer) claimRename(source, target Descriptor, result *Result) error {
	newBase := target.WithName(source.Name).BaseName()

	if newBase != target.BaseName() {
		err := s.FS.Rename(target.FullPath(), newBase)
		if err != nil {
			return err
		}

		s.renamed++
		s.emit(FileRenamed{OldPath: target.FullPath(), NewBase: newBase})
	}

	result.addResolved(target)

	return nil
}

// copyUnmatched copies a source file with no match into the target
// directory under its own name.
func (s *Syncer) copyUnmatched(source Descriptor, targetDir string) error {
	dest := s.FS.Join(targetDir, source.BaseName())

	err := s.FS.Copy(source.FullPath(), dest)
	if err != nil {
		return err
	}

	s.copied++
	s.emit(FileCopied{Source: source.FullPath(), Dest: dest})

	return nil
}

// listDescriptors lists the regular files of a directory as descriptors,
// with system artifacts and excluded patterns filtered out.
func (s *Syncer) listDescriptors(dir string) ([]Descriptor, error) {
	entries, err := s.FS.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	descriptors := make([]Descriptor, 0, len(entries))

	for _, entry := range entries {
		if !s.Filter.ShouldInclude(entry.Name) {
			continue
		}

		descriptors = append(descriptors, NewDescriptor(dir, entry.Name))
	}

	return descriptors, nil
}
