package model

type Review struct {
	MovieID  int64  `json:"movieId"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
