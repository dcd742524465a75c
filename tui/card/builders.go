package card

import "fmt"

// Header wraps the post's media reference in a container holding one image.
// The reference is passed through as-is; an empty or broken one renders as a
// broken image.
func Header(mediaURL string) Element {
	img := Element{
		Tag:   TagImg,
		Class: ClassHeaderImage,
		Attrs: []Attr{{Key: AttrSrc, Val: mediaURL}},
	}
	return Element{Tag: TagDiv, Children: []Element{img}}
}

// BodyWrapper returns the empty container that hosts avatar, info and
// reactions.
func BodyWrapper() Element {
	return Element{Tag: TagDiv, Class: ClassBodyWrapper}
}

// Info renders the author name followed by the creation date.
func Info(author, dateCreated string) Element {
	return Element{
		Tag:   TagDiv,
		Class: ClassInfo,
		Children: []Element{
			{Tag: TagParagraph, Class: ClassAuthor, Text: author},
			{Tag: TagParagraph, Class: ClassDate, Text: dateCreated},
		},
	}
}

// Avatar renders the author's avatar image. The alt text is always
// "<author>'s avatar", even for an empty author.
func Avatar(author, avatarURL string) Element {
	img := Element{
		Tag:   TagImg,
		Class: ClassAvatar,
		Attrs: []Attr{
			{Key: AttrSrc, Val: avatarURL},
			{Key: AttrAlt, Val: author + "'s avatar"},
		},
	}
	return Element{Tag: TagDiv, Class: ClassAvatarWrapper, Children: []Element{img}}
}

// Content renders the title as a heading followed by the body paragraph.
func Content(title, body string) Element {
	return Element{
		Tag:   TagDiv,
		Class: ClassContent,
		Children: []Element{
			{Tag: TagHeading, Class: ClassTitle, Text: title},
			{Tag: TagParagraph, Class: ClassBodyText, Text: body},
		},
	}
}

// Count is a reaction value: a number or pre-formatted text.
type Count interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~string
}

// Reactions renders the comment group followed by the like group. Values are
// shown as given: no pluralization, no abbreviation.
func Reactions[C, L Count](comments C, likes L) Element {
	return Element{
		Tag:   TagDiv,
		Class: ClassReactions,
		Children: []Element{
			reactionGroup(ClassCommentGroup, ClassCommentIcon, fmt.Sprint(comments)),
			reactionGroup(ClassLikeGroup, ClassLikeIcon, fmt.Sprint(likes)),
		},
	}
}

func reactionGroup(class, icon, value string) Element {
	return Element{
		Tag:   TagDiv,
		Class: class,
		Children: []Element{
			{Tag: TagIcon, Class: icon},
			{Tag: TagParagraph, Class: ClassCount, Text: value},
		},
	}
}
