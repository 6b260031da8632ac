package pet

// NoticeKind classifies a notable moment produced by the simulation.
type NoticeKind string

const (
	NoticeHatched     NoticeKind = "hatched"
	NoticeStage       NoticeKind = "stage"
	NoticeEvolved     NoticeKind = "evolved"
	NoticeLevelUp     NoticeKind = "level_up"
	NoticeSick        NoticeKind = "sick"
	NoticeRecovered   NoticeKind = "recovered"
	NoticeEvent       NoticeKind = "event"
	NoticeAchievement NoticeKind = "achievement"
)

// Notice is a user-facing message emitted by the core. The core never
// delivers notices itself; the caller drains them with TakeNotices.
type Notice struct {
	Kind  NoticeKind
	Title string
	Body  string
}

func (p *Pet) notify(kind NoticeKind, title, body string) {
	p.notices = append(p.notices, Notice{Kind: kind, Title: title, Body: body})
}

// TakeNotices returns and clears the pending notices.
func (p *Pet) TakeNotices() []Notice {
	n := p.notices
	p.notices = nil
	return n
}
