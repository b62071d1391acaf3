// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package aes

import "github.com/coldharbor-labs/ctrsuite/internal/bitslice"

// subBytes applies the AES S-box to every byte represented by st, across
// every lane at once, via the Boyar-Peralta minimal Boolean circuit for the
// AES S-box: 8 input bit-planes, 8 output bit-planes, built from AND/XOR
// and four final inverters. It is the same circuit whether st holds one
// block (the key schedule's SubWord step) or Lanes blocks in parallel (a
// CTR round); the circuit only ever combines bit-planes, never inspects
// which lane a bit belongs to, so it works unmodified either way.
func subBytes(st *bitslice.State) {
	u0 := st[7]
	u1 := st[6]
	u2 := st[5]
	u3 := st[4]
	u4 := st[3]
	u5 := st[2]
	u6 := st[1]
	u7 := st[0]

	t1 := u6 ^ u4
	t2 := u3 ^ u0
	t3 := u1 ^ u2
	t6 := u1 ^ u5
	t7 := u0 ^ u6
	t13 := u2 ^ u5
	t16 := u0 ^ u5
	t18 := u6 ^ u5

	t4 := u7 ^ t3
	t5 := t1 ^ t2
	t8 := t1 ^ t6
	t9 := u6 ^ t4

	t10 := u3 ^ t4
	t11 := u7 ^ t5
	t12 := t5 ^ t6
	t14 := t3 ^ t5
	t15 := u5 ^ t7
	t17 := u7 ^ t8
	t19 := t2 ^ t18
	t22 := u0 ^ t4
	t54 := t2 & t8
	t50 := t9 & t4

	t20 := t4 ^ t15
	t21 := t1 ^ t13
	t39 := t21 ^ t5
	t40 := t21 ^ t7
	t41 := t7 ^ t19
	t42 := t16 ^ t14
	t43 := t22 ^ t17
	t44 := t19 & t5
	t45 := t20 & t11
	t47 := t10 & u7
	t57 := t16 & t14

	t46 := t12 ^ t44
	t48 := t47 ^ t44
	t49 := t7 & t21
	t51 := t40 ^ t49
	t52 := t22 & t17
	t53 := t52 ^ t49

	t55 := t41 & t39
	t56 := t55 ^ t54
	t58 := t57 ^ t54
	t59 := t46 ^ t45
	t60 := t48 ^ t42
	t61 := t51 ^ t50
	t62 := t53 ^ t58
	t63 := t59 ^ t56
	t64 := t60 ^ t58
	t65 := t61 ^ t56
	t66 := t62 ^ t43
	t67 := t65 ^ t66
	t68 := t65 & t63
	t69 := t64 ^ t68
	t70 := t63 ^ t64
	t71 := t66 ^ t68
	t72 := t71 & t70
	t73 := t69 & t67
	t74 := t63 & t66
	t75 := t70 & t74
	t76 := t70 ^ t68
	t77 := t64 & t65
	t78 := t67 & t77
	t79 := t67 ^ t68
	t80 := t64 ^ t72
	t81 := t75 ^ t76
	t82 := t66 ^ t73
	t83 := t78 ^ t79
	t84 := t81 ^ t83
	t85 := t80 ^ t82
	t86 := t80 ^ t81
	t87 := t82 ^ t83
	t88 := t85 ^ t84

	t89 := t87 & t5
	t90 := t83 & t11
	t91 := t82 & u7
	t92 := t86 & t21
	t93 := t81 & t4
	t94 := t80 & t17
	t95 := t85 & t8
	t96 := t88 & t39
	t97 := t84 & t14
	t98 := t87 & t19
	t99 := t83 & t20
	t100 := t82 & t10
	t101 := t86 & t7
	t102 := t81 & t9
	t103 := t80 & t22
	t104 := t85 & t2
	t105 := t88 & t41
	t106 := t84 & t16

	t107 := t104 ^ t105
	t108 := t93 ^ t99
	t109 := t96 ^ t107
	t110 := t98 ^ t108
	t111 := t91 ^ t101
	t112 := t89 ^ t92
	t113 := t107 ^ t112
	t114 := t90 ^ t110
	t115 := t89 ^ t95
	t116 := t94 ^ t102
	t117 := t97 ^ t103
	t118 := t91 ^ t114
	t119 := t111 ^ t117
	t120 := t100 ^ t108
	t121 := t92 ^ t95
	t122 := t110 ^ t121
	t123 := t106 ^ t119
	t124 := t104 ^ t115
	t125 := t111 ^ t116

	st[7] = t109 ^ t122
	st[5] = ^(t123 ^ t124)
	t128 := t94 ^ t107
	st[4] = t113 ^ t114
	st[3] = t118 ^ t128
	t131 := t93 ^ t101
	t132 := t112 ^ t120
	st[0] = ^(t113 ^ t125)
	t134 := t97 ^ t116
	t135 := t131 ^ t134
	t136 := t93 ^ t115
	st[1] = ^(t109 ^ t135)
	t138 := t119 ^ t132
	st[2] = t109 ^ t138
	t140 := t114 ^ t136
	st[6] = ^(t109 ^ t140)
}
