package check

type Checker struct{}

func (*Checker) Require(ok bool, cond string) {}

func Must(ok bool, cond string) {}

func Other(ok bool, cond string) {}
