package ui

// Keys 一帧里轮询到的按键状态
// Ctrl 是按住；其它的是这一帧刚按下
type Keys struct {
	Ctrl bool
	S    bool
	F1   bool
	C    bool
	Esc  bool
}

// Targets 把按键翻译成要执行的操作，和 Frame.Hit 对鼠标做的事一样
func (k Keys) Targets() []Target {
	var out []Target
	if k.Ctrl && k.S {
		out = append(out, TargetPause)
	}
	if k.F1 {
		out = append(out, TargetHelp)
	}
	if k.Ctrl && k.C {
		out = append(out, TargetCopy)
	}
	if k.Esc {
		out = append(out, TargetEscape)
	}
	return out
}
