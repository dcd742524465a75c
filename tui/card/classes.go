package card

import "strings"

// Class labels. They are opaque to the builders; renderers map them to styles.
const (
	ClassCard = "card mb-4 shadow-sm"

	ClassHeaderImage = "card-img-top"

	ClassBodyWrapper = "card-body row pb-0"

	ClassInfo   = "d-flex flex-column align-self-center w-50 col-6"
	ClassAuthor = "mb-0 bold-calibri"
	ClassDate   = "mb-1 regular-calibri"

	ClassAvatarWrapper = "col-1 p-0"
	ClassAvatar        = "rounded-circle w-100"

	ClassContent  = "mt-4 container-md ps-0"
	ClassTitle    = "fs-5 bold-calibri"
	ClassBodyText = "w-100 regular-calibri"

	ClassReactions    = "d-flex align-items-end justify-content-end flex-fill me-3 me-lg-5"
	ClassCommentGroup = "d-flex me-4 me-lg-5 align-items-center fs-5"
	ClassLikeGroup    = "d-flex align-items-center fs-5"
	ClassCommentIcon  = "fa-solid fa-comment"
	ClassLikeIcon     = "fa-solid fa-heart"
	ClassCount        = "m-0 ms-2"

	ClassDeleteWrapper = "d-flex justify-content-end"
	ClassDeleteIcon    = "fa-solid fa-xmark fs-4"
	ClassEditWrapper   = "d-flex justify-content-start ps-0 mt-3"
	ClassEditLabel     = "mb-0 edit-btn"
)

func splitClasses(classList string) []string {
	return strings.Fields(classList)
}
