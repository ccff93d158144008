/*
Package dialog implements a stack-based, resumable dialog engine.

A dialog is a named, ordered sequence of steps (a waterfall). The engine runs
the top frame of a per-conversation stack: each step either advances to the
next step, suspends at a prompt, ends the dialog, or redirects to another
dialog via begin/replace. Suspension is explicit state, not call-stack capture:
the persisted frame records which step of which dialog receives the next
inbound message, so a conversation resumes deterministically after a reload.

Step sequencing is strictly ordinal. Step N's advance always invokes step N+1;
branching happens only through replace/begin or conditional logic inside a
step choosing which action to return.
*/
package dialog
