package ir

import (
	json "github.com/goccy/go-json"
)

type irNode struct {
	Kind     Kind        `json:"kind"`
	Source   *SourceSpan `json:"source,omitempty"`
	Children []*Node     `json:"children,omitempty"`

	Content string `json:"content,omitempty"`
	Lang    Lang   `json:"lang,omitempty"`

	Name   string `json:"name,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`

	FileName string `json:"fileName,omitempty"`
	GUID     string `json:"guid,omitempty"`
	Hash     string `json:"hash,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irNode{
		Kind:     n.Kind,
		Source:   n.Source,
		Children: n.Children,
		Content:  n.Content,
		Lang:     n.Lang,
		Name:     n.Name,
		Prefix:   n.Prefix,
		Suffix:   n.Suffix,
		FileName: n.FileName,
		GUID:     n.GUID,
		Hash:     n.Hash,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irNode{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Kind = tmp.Kind
	n.Source = tmp.Source
	n.Children = tmp.Children
	n.Content = tmp.Content
	n.Lang = tmp.Lang
	n.Name = tmp.Name
	n.Prefix = tmp.Prefix
	n.Suffix = tmp.Suffix
	n.FileName = tmp.FileName
	n.GUID = tmp.GUID
	n.Hash = tmp.Hash
	return nil
}

func ToJSON(n *Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	return n, nil
}
