// Package twmerge merges Tailwind CSS class lists, resolving conflicting
// utilities so that the last class of each group wins.
//
// Classes are compared by class group (padding-x, text color, border width,
// ...) under the same variant modifiers and important flag:
//
//	twmerge.Merge("px-2 py-1 bg-red-500", "p-3 bg-[#B91C1C]")
//	// "p-3 bg-[#B91C1C]"
//
//	twmerge.Merge("text-sm text-slate-500", "hover:text-white text-lg")
//	// "text-slate-500 hover:text-white text-lg"
//
// Groups that cover other groups remove them when they come later (p-3 removes
// px-2), but a narrower group after a wider one keeps both (p-3 px-2).
// Classes the merger does not recognise are kept as they are.
package twmerge
