package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenTipID 生成贴士ID
func GenTipID() uint64 {
	return uint64(node.Generate().Int64())
}

func GenID() int64 {
	return node.Generate().Int64()
}
