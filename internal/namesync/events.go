package namesync

// Event is the interface implemented by all engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// Walk phase events

// DirStarted is emitted when the matcher begins a directory pair.
type DirStarted struct {
	Source string
	Target string
}

func (DirStarted) isEvent() {}

// FileProcessed is emitted once per source file after its match branch
// (rename, copy, or deferred collision) has been taken.
type FileProcessed struct {
	Path string
}

func (FileProcessed) isEvent() {}

// FileRenamed is emitted when a target file is renamed to a source stem.
type FileRenamed struct {
	OldPath string
	NewBase string
}

func (FileRenamed) isEvent() {}

// FileCopied is emitted when a source file with no match is copied in.
type FileCopied struct {
	Source string
	Dest   string
}

func (FileCopied) isEvent() {}

// CollisionFound is emitted when a source file matches several unclaimed
// targets and resolution is deferred.
type CollisionFound struct {
	Source     string
	Candidates int
}

func (CollisionFound) isEvent() {}

// WalkComplete is emitted after the last directory pair has been matched.
type WalkComplete struct {
	Processed  int
	Renamed    int
	Copied     int
	Collisions int
}

func (WalkComplete) isEvent() {}

// Resolve phase events

// CollisionResolved is emitted once per collision after its rename or
// fallback copy has been performed.
type CollisionResolved struct {
	Source  string
	Target  string // path renamed, or destination of the fallback copy
	NewBase string
	Copied  bool // true when no candidate remained and the source was copied
}

func (CollisionResolved) isEvent() {}

// ResolveComplete is emitted after every collision has been resolved.
type ResolveComplete struct {
	Renamed int
	Copied  int
}

func (ResolveComplete) isEvent() {}
