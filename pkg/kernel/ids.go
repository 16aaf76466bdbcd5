package kernel

type ProfileID string

func NewProfileID(id string) ProfileID { return ProfileID(id) }
func (p ProfileID) String() string     { return string(p) }
func (p ProfileID) IsEmpty() bool      { return string(p) == "" }

type ClientID string

func NewClientID(id string) ClientID { return ClientID(id) }
func (c ClientID) String() string    { return string(c) }
func (c ClientID) IsEmpty() bool     { return string(c) == "" }
