package card

import "github.com/CrestNiraj12/postcards/domain"

// Handlers are the callbacks bound to a card's action controls. A nil handler
// leaves its control out of the card.
type Handlers struct {
	OnDelete Handler
	OnEdit   Handler
}

// Card assembles the full card for one post:
// header, body (avatar, info, reactions), content, then the action controls.
func Card(p domain.Post, h Handlers) Element {
	body := BodyWrapper().Append(
		Avatar(p.Author, p.AvatarURL),
		Info(p.Author, p.DateCreated),
		Reactions(p.CommentCount, p.LikeCount),
	)
	card := Element{Tag: TagDiv, Class: ClassCard}.Append(
		Header(p.MediaURL),
		body,
		Content(p.Title, p.Body),
	)
	if h.OnEdit != nil {
		card = card.Append(EditButton(p.ID, h.OnEdit))
	}
	if h.OnDelete != nil {
		card = card.Append(DeleteButton(p.ID, h.OnDelete))
	}
	return card
}
